package oneprompt

import (
	"github.com/beevik/etree"
)

// SerializeDocument converts a Document back to its XML text form, preceded
// by the standard XML prolog line. Metadata fields are written in order,
// optional variable defaults become element text, and the template body is
// written as character data so the round trip through ParseDocument is
// lossless.
//
// SerializeDocument does not validate the document; the Engine facade
// validates before serializing.
func SerializeDocument(doc *Document) (string, error) {
	if doc == nil {
		return "", NewSerializeError(ErrMsgNilDocument, nil)
	}

	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := tree.CreateElement(ElemPrompt)

	meta := root.CreateElement(ElemMetadata)
	for _, field := range doc.Metadata {
		meta.CreateElement(field.Key).SetText(field.Value)
	}

	if len(doc.Variables) > 0 {
		vars := root.CreateElement(ElemVars)
		for _, v := range doc.Variables {
			ve := vars.CreateElement(ElemVar)
			ve.CreateAttr(AttrName, v.Name)
			if v.Required {
				ve.CreateAttr(AttrRequired, AttrValueTrue)
			} else {
				ve.CreateAttr(AttrRequired, AttrValueFalse)
				ve.SetText(v.Default)
			}
		}
	}

	for _, p := range doc.Parts {
		pe := root.CreateElement(ElemPart)
		pe.CreateAttr(AttrName, p.Name)
		pe.SetText(p.Content)
	}

	root.CreateElement(ElemTemplate).SetText(doc.Template)

	tree.Indent(XMLIndentSpaces)

	out, err := tree.WriteToString()
	if err != nil {
		return "", NewSerializeError(ErrMsgSerializeWrite, err)
	}
	return out, nil
}
