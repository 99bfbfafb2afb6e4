package pom

import (
	"encoding/xml"

	"go.trai.ch/zerr"
)

// projectModel is the subset of the Maven pom schema this resolver reads.
type projectModel struct {
	XMLName    xml.Name    `xml:"project"`
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version"`
	Packaging  string      `xml:"packaging"`
	Parent     *parentRef  `xml:"parent"`
	Properties propertyMap `xml:"properties"`
	DepMgmt    depMgmt     `xml:"dependencyManagement"`
}

type parentRef struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type depMgmt struct {
	Dependencies []dependencyModel `xml:"dependencies>dependency"`
}

type dependencyModel struct {
	GroupID    string           `xml:"groupId"`
	ArtifactID string           `xml:"artifactId"`
	Version    string           `xml:"version"`
	Type       string           `xml:"type"`
	Scope      string           `xml:"scope"`
	Classifier string           `xml:"classifier"`
	Exclusions []exclusionModel `xml:"exclusions>exclusion"`
}

type exclusionModel struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// isBomImport reports whether the entry imports another bom's managed
// dependencies rather than managing a version itself.
func (d dependencyModel) isBomImport() bool {
	return d.Scope == "import" && d.Type == "pom"
}

// propertyMap decodes the free-form <properties> element, whose child
// element names are the property keys.
type propertyMap map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (p *propertyMap) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &el); err != nil {
				return err
			}
			(*p)[el.Name.Local] = value
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// parseModel parses a raw pom document.
func parseModel(data []byte) (*projectModel, error) {
	var model projectModel
	if err := xml.Unmarshal(data, &model); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pom document")
	}
	return &model, nil
}
