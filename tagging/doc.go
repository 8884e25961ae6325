// Package tagging models the attributes of tagged PDF structure elements.
//
// A Tag pairs a structural Role (heading, table cell, list, figure, ...) with
// four ordered attribute groups: general attributes (Attr), list attributes
// (ListAttr), table attributes (TableAttr) and layout attributes
// (LayoutAttr). Role constructors only accept the options that make sense for
// the role, so a span can be set on a table cell but not on a paragraph:
//
//	th := tagging.TableHeader(tagging.ScopeRow,
//		tagging.WithID(tagging.TagIDString("price")),
//		tagging.WithSpan(tagging.ColSpanOf(tagging.MustCount(3))),
//		tagging.WithWidth(250),
//	)
//
// The package never refers to PDF object types. Translation to the PDF
// vocabulary lives in the pdfmap subpackage.
package tagging
