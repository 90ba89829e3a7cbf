package scanner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksift/linksift/internal/models"
)

func values(urls []models.Url) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = u.Value
	}
	return out
}

func TestResolveKnownTags(t *testing.T) {
	logger := zerolog.Nop()
	tests := []struct {
		tag      string
		resolved string
	}{
		{"html", FormatHTML},
		{"HTML", FormatHTML},
		{" markdown ", FormatMarkdown},
		{"javascript", FormatJavaScript},
		{"typescript", FormatTypeScript},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
		{"env", FormatEnv},
		{"properties", FormatProperties},
		{"toml", FormatTOML},
		{"ini", FormatINI},
	}
	for _, tt := range tests {
		s, resolved := Resolve(tt.tag, logger)
		require.NotNil(t, s, "tag %q", tt.tag)
		assert.Equal(t, tt.resolved, resolved, "tag %q", tt.tag)
	}
}

func TestResolveUnknownTagFallsBackToMarkdown(t *testing.T) {
	s, resolved := Resolve("docx", zerolog.Nop())
	assert.IsType(t, &MarkdownScanner{}, s)
	assert.Equal(t, FormatMarkdown, resolved)
}

func TestHTMLScannerAttributes(t *testing.T) {
	s := NewHTMLScanner(zerolog.Nop())
	out := s.Scan(`<a href="https://example.com/page">link</a> <img src='http://cdn.example.com/i.png'>`)
	require.Len(t, out.Urls, 2)
	assert.Equal(t, "https://example.com/page", out.Urls[0].Value)
	assert.Equal(t, models.SchemeHTTPS, out.Urls[0].Scheme)
	assert.Equal(t, "example.com", out.Urls[0].Host)
	assert.Equal(t, "/page", out.Urls[0].Path)
	assert.Equal(t, 1, out.Urls[0].Line)
	assert.Equal(t, "http://cdn.example.com/i.png", out.Urls[1].Value)
}

func TestHTMLScannerRejectsRelativeAndPseudoSchemes(t *testing.T) {
	s := NewHTMLScanner(zerolog.Nop())
	out := s.Scan(`<a href="/local/page">x</a> <a href="javascript:void(0)">y</a> <a href="#top">z</a>`)
	assert.Empty(t, out.Urls)
}

func TestHTMLScannerCommentSuppression(t *testing.T) {
	s := NewHTMLScanner(zerolog.Nop())
	content := `<!-- <a href="https://hidden.example.com">old</a> -->
<a href="https://visible.example.com">new</a>
<!-- comment opens
https://also-hidden.example.com
--> https://after.example.com`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://visible.example.com",
		"https://after.example.com",
	}, values(out.Urls))
}

func TestHTMLScannerDedupesAcrossPasses(t *testing.T) {
	s := NewHTMLScanner(zerolog.Nop())
	out := s.Scan(`<a href="https://example.com/x">https://example.com/x</a>`)
	require.Len(t, out.Urls, 1)
	// The attribute pass wins the seen-set entry.
	assert.Equal(t, 10, out.Urls[0].Column)
}

func TestMarkdownScannerLinksAndAutolinks(t *testing.T) {
	s := NewMarkdownScanner(zerolog.Nop())
	content := `See [the docs](https://example.com/docs "title") and <https://auto.example.com>.
Plain https://plain.example.com too. Relative [here](./local.md) skipped.`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://example.com/docs",
		"https://auto.example.com",
		"https://plain.example.com",
	}, values(out.Urls))
}

func TestMarkdownScannerFenceSuppression(t *testing.T) {
	s := NewMarkdownScanner(zerolog.Nop())
	content := "before https://kept.example.com\n" +
		"```\n" +
		"https://fenced.example.com\n" +
		"```\n" +
		"after https://also-kept.example.com"
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://kept.example.com",
		"https://also-kept.example.com",
	}, values(out.Urls))
}

func TestMarkdownScannerInlineCodeSuppression(t *testing.T) {
	s := NewMarkdownScanner(zerolog.Nop())
	out := s.Scan("use `https://inline.example.com` but https://plain.example.com")
	assert.Equal(t, []string{"https://plain.example.com"}, values(out.Urls))
}

func TestCSSScanner(t *testing.T) {
	s := NewCSSScanner(zerolog.Nop())
	content := `@import "https://fonts.example.com/face.css";
body { background: url('https://cdn.example.com/bg.png'); }
/* url(https://commented.example.com/x.png) */
.a { background: url(https://bare.example.com/b.png); }`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://fonts.example.com/face.css",
		"https://cdn.example.com/bg.png",
		"https://bare.example.com/b.png",
	}, values(out.Urls))
}

func TestScriptScannerQuotedLiterals(t *testing.T) {
	s := NewScriptScanner(zerolog.Nop())
	content := `const api = "https://api.example.com/v1";
const ws = 'ftp://files.example.com';
fetch(` + "`https://tpl.example.com`" + `);`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://api.example.com/v1",
		"ftp://files.example.com",
		"https://tpl.example.com",
	}, values(out.Urls))
}

func TestScriptScannerCommentSuppression(t *testing.T) {
	s := NewScriptScanner(zerolog.Nop())
	content := `const a = "https://kept.example.com"; // https://line-commented.example.com
/* https://block-commented.example.com */
const b = "https://kept2.example.com";`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://kept.example.com",
		"https://kept2.example.com",
	}, values(out.Urls))
}

func TestScriptScannerProtocolSlashesNotComments(t *testing.T) {
	s := NewScriptScanner(zerolog.Nop())
	out := s.Scan(`const u = "http://example.com/a//b";`)
	require.Len(t, out.Urls, 1)
	assert.Equal(t, "http://example.com/a//b", out.Urls[0].Value)
}

func TestJSONScanner(t *testing.T) {
	s := NewJSONScanner(zerolog.Nop())
	content := `{
  "homepage": "https://example.com",
  "icon": "./icon.png",
  "note": "visit https://example.com/help for help"
}`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://example.com",
		"https://example.com/help",
	}, values(out.Urls))
}

func TestYAMLScanner(t *testing.T) {
	s := NewYAMLScanner(zerolog.Nop())
	content := `endpoint: https://api.example.com/v2#anchor
# https://commented.example.com
mirror: "http://mirror.example.com"`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://api.example.com/v2#anchor",
		"http://mirror.example.com",
	}, values(out.Urls))
}

func TestXMLScanner(t *testing.T) {
	s := NewXMLScanner(zerolog.Nop())
	content := `<feed><link href="https://feed.example.com/atom"/>
<use xlink:href="https://icons.example.com/sprite.svg#home"/>
<!-- <link href="https://old.example.com"/> -->
<text>see https://plain.example.com</text></feed>`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://feed.example.com/atom",
		"https://icons.example.com/sprite.svg#home",
		"https://plain.example.com",
	}, values(out.Urls))
}

func TestPropertiesScanner(t *testing.T) {
	s := NewPropertiesScanner(zerolog.Nop())
	content := `# https://commented.example.com
! https://also-commented.example.com
service.url=https://service.example.com/api
support=mailto:help@example.com`
	out := s.Scan(content)
	assert.Equal(t, []string{
		"https://service.example.com/api",
		"mailto:help@example.com",
	}, values(out.Urls))
}

func TestLineScannerPositions(t *testing.T) {
	s := NewYAMLScanner(zerolog.Nop())
	out := s.Scan("first: nothing\nsecond: https://example.com/two")
	require.Len(t, out.Urls, 1)
	assert.Equal(t, 2, out.Urls[0].Line)
	assert.Equal(t, 9, out.Urls[0].Column)
	assert.Equal(t, "second: https://example.com/two", out.Urls[0].Context)
}

func TestScannerDedupesRepeatedValues(t *testing.T) {
	s := NewYAMLScanner(zerolog.Nop())
	out := s.Scan("a: https://example.com\nb: https://example.com\nc: https://example.com/other")
	assert.Equal(t, []string{
		"https://example.com",
		"https://example.com/other",
	}, values(out.Urls))
}

func TestLineScannerIsolatesPanickingPass(t *testing.T) {
	boom := func(line string, lineNo int, view LineView, sc *ScanContext) []models.Url {
		if lineNo == 2 {
			panic("bad line")
		}
		return plainTextPass(line, lineNo, view, sc)
	}
	ls := &lineScanner{
		logger:      zerolog.Nop(),
		suppression: func() *Suppression { return &Suppression{} },
		passes:      []linePass{boom},
	}

	out := ls.Scan("https://a.example.com\nhttps://lost.example.com\nhttps://c.example.com")

	assert.Equal(t, []string{
		"https://a.example.com",
		"https://c.example.com",
	}, values(out.Urls))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, models.SeverityWarning, out.Errors[0].Severity)
	assert.Equal(t, models.ActionSkip, out.Errors[0].SuggestedAction)
	assert.Contains(t, out.Errors[0].Message, "line 2")
}

func TestScannerEmptyContent(t *testing.T) {
	s := NewMarkdownScanner(zerolog.Nop())
	out := s.Scan("")
	assert.NotNil(t, out.Urls)
	assert.Empty(t, out.Urls)
	assert.Empty(t, out.Errors)
}
