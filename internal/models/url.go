package models

// Scheme is the protocol class assigned to an extracted URL.
type Scheme string

const (
	// SchemeHTTP indicates a plain web URL.
	SchemeHTTP Scheme = "http"
	// SchemeHTTPS indicates a secure web URL.
	SchemeHTTPS Scheme = "https"
	// SchemeFTP indicates a file transfer URL.
	SchemeFTP Scheme = "ftp"
	// SchemeFile indicates a local or network file reference.
	SchemeFile Scheme = "file"
	// SchemeMailto indicates an email address reference.
	SchemeMailto Scheme = "mailto"
	// SchemeTel indicates a telephone number reference.
	SchemeTel Scheme = "tel"
	// SchemeUnknown is assigned when no recognized prefix matches.
	// It is a valid classification, not an error.
	SchemeUnknown Scheme = "unknown"
)

// UrlType is an optional finer classification used by collection utilities.
type UrlType string

const (
	TypeAbsolutePath UrlType = "absolute-path"
	TypeDomain       UrlType = "domain"
	TypeWeb          UrlType = "web"
	TypeFile         UrlType = "file"
	TypeMail         UrlType = "mail"
	TypePhone        UrlType = "phone"
)

// Url holds one extracted URL occurrence with its classification and
// source position. Instances are created once per detection and never
// mutated afterwards.
type Url struct {
	Value   string  `json:"value"`
	Scheme  Scheme  `json:"scheme"`
	Type    UrlType `json:"type,omitempty"`
	Host    string  `json:"host,omitempty"`
	Path    string  `json:"path,omitempty"`
	Line    int     `json:"line,omitempty"`   // 1-based
	Column  int     `json:"column,omitempty"` // 1-based
	Context string  `json:"context,omitempty"`
}

// HasPosition reports whether the occurrence carries a source position.
func (u Url) HasPosition() bool {
	return u.Line > 0 && u.Column > 0
}

// IsWeb reports whether the scheme carries an authority component the
// grouping utilities can bucket by host.
func (s Scheme) IsWeb() bool {
	return s == SchemeHTTP || s == SchemeHTTPS || s == SchemeFTP
}
