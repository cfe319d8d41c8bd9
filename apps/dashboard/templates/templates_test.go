package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	for _, name := range []string{TemplateBase, "footer", TemplateError, TemplateGrant, TemplateWallets, TemplateSignIn} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorScreenEscapesMessage(t *testing.T) {
	tmpl := MustParse()

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, TemplateError, map[string]string{
		"Message":     `<script>alert("x")</script>`,
		"CloseAction": "/close",
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>alert")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}
