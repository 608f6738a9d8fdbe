package preview

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attview/internal/errdefer"
)

// _docxBody is the part of a DOCX archive holding the document text.
const _docxBody = "word/document.xml"

func readDOCX(b []byte) (_ *DocumentInfo, err error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	f, err := zr.Open(_docxBody)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	paras, err := docxParagraphs(f)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &DocumentInfo{Paragraphs: paras}, nil
}

// docxParagraphs extracts the text of every <w:p> element.
// Tabs and breaks inside a paragraph become "\t" and "\n".
func docxParagraphs(r io.Reader) ([]string, error) {
	const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	dec := xml.NewDecoder(r)
	var (
		paras  []string
		sb     strings.Builder
		inPara bool
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if tok.Name.Space != wordNS {
				continue
			}
			switch tok.Name.Local {
			case "p":
				inPara = true
				sb.Reset()
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}

		case xml.EndElement:
			if tok.Name.Space != wordNS {
				continue
			}
			switch tok.Name.Local {
			case "p":
				if inPara {
					paras = append(paras, sb.String())
				}
				inPara = false
			case "t":
				inText = false
			}

		case xml.CharData:
			if inText {
				sb.Write(tok)
			}
		}
	}
	return paras, nil
}
