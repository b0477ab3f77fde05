package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewEvent struct {
	ID, Title, Date, Description string
	image                        string
}

func (v viewEvent) ImageURL() string { return v.image }

func TestTemplates(t *testing.T) {
	tmpl := Templates()

	for _, name := range []string{"index.html", "admin.html", "login.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	events := []viewEvent{
		{ID: "a1", Title: "Concert <live>", Date: "2025-06-01", Description: "Live music"},
		{ID: "b2", Title: "Expo", Date: "2025-07-01", image: "https://cdn.example.com/events/1_expo.png"},
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "admin.html", map[string]any{"events": events}))
	out := buf.String()
	assert.Contains(t, out, `action="/admin/delete-event/a1"`)
	assert.Contains(t, out, `action="/admin/delete-event/b2"`)
	assert.Contains(t, out, "Concert &lt;live&gt;")
	assert.Contains(t, out, `src="https://cdn.example.com/events/1_expo.png"`)

	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", map[string]any{"events": nil}))
	assert.Contains(t, buf.String(), "No events yet.")
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("style.css")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
