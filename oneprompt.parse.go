package oneprompt

import (
	"os"
	"strings"

	"github.com/beevik/etree"
)

// ParseDocument parses an XML prompt document into a Document.
//
// The expected shape is a <prompt> root with an ordered <metadata> block,
// a <variables> block of <var> declarations, any number of <part> elements,
// and a required <template> element. One-or-many fields (<var>, <part>) are
// normalized into uniform ordered slices. The template body is recovered
// verbatim: escaped character data is unescaped, and any literal markup-like
// children are re-serialized back into the text, so directives and {{tokens}}
// inside the template survive the markup layer untouched.
//
// ParseDocument does not validate cross-references; call ValidateDocument
// (or use the Engine facade, which does so automatically).
func ParseDocument(source string) (*Document, error) {
	if strings.TrimSpace(source) == "" {
		return nil, NewParseError(ErrMsgEmptyDocument, nil)
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromString(source); err != nil {
		return nil, NewParseError(ErrMsgMalformedXML, err)
	}

	root := tree.Root()
	if root == nil || root.Tag != ElemPrompt {
		return nil, NewParseError(ErrMsgMissingRoot, nil)
	}

	doc := &Document{}

	if meta := root.SelectElement(ElemMetadata); meta != nil {
		for _, field := range meta.ChildElements() {
			doc.Metadata.Set(field.Tag, strings.TrimSpace(field.Text()))
		}
	}

	if vars := root.SelectElement(ElemVars); vars != nil {
		for _, ve := range vars.SelectElements(ElemVar) {
			v := Variable{
				Name:     ve.SelectAttrValue(AttrName, ""),
				Required: ve.SelectAttrValue(AttrRequired, AttrValueFalse) == AttrValueTrue,
			}
			if !v.Required {
				v.Default = ve.Text()
			}
			doc.Variables = append(doc.Variables, v)
		}
	}

	for _, pe := range root.SelectElements(ElemPart) {
		doc.Parts = append(doc.Parts, Part{
			Name:    pe.SelectAttrValue(AttrName, ""),
			Content: innerText(pe),
		})
	}

	tmpl := root.SelectElement(ElemTemplate)
	if tmpl == nil {
		return nil, NewParseError(ErrMsgMissingTemplate, nil)
	}
	doc.Template = innerText(tmpl)

	return doc, nil
}

// ParseDocumentFile reads and parses an XML prompt document from a file.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(ErrMsgReadFile, err)
	}
	return ParseDocument(string(data))
}

// innerText reconstructs the raw inner content of an element. Character data
// is taken as-is (the XML reader has already unescaped it); child elements -
// markup-like text the author left unescaped - are serialized back to their
// textual form.
func innerText(el *etree.Element) string {
	var sb strings.Builder
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			sub := etree.NewDocument()
			sub.SetRoot(t.Copy())
			if s, err := sub.WriteToString(); err == nil {
				sb.WriteString(s)
			}
		}
	}
	return sb.String()
}
