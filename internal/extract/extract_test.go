package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Plain(t *testing.T) {
	out, err := Text("text/plain", []byte("python developer"))
	require.NoError(t, err)
	assert.Equal(t, "python developer", out)
}

func TestText_CharsetParameterIgnored(t *testing.T) {
	out, err := Text("text/plain; charset=utf-8", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestText_HTMLStripsMarkup(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body><script>alert(1)</script><p>python and sql</p></body></html>`

	out, err := Text("text/html", []byte(html))
	require.NoError(t, err)
	assert.Contains(t, out, "python and sql")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "color:red")
}

func TestText_UnsupportedType(t *testing.T) {
	_, err := Text("image/png", []byte{0x89, 0x50})
	require.Error(t, err)

	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "image/png", ute.ContentType)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text("application/pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := Text("application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("not a docx"))
	assert.Error(t, err)
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "txt", file: "resume.txt", data: []byte("plain"), want: "plain"},
		{name: "unknown extension treated as plain", file: "resume", data: []byte("plain"), want: "plain"},
		{name: "html", file: "resume.html", data: []byte("<p>web</p>"), want: "web"},
		{name: "corrupt pdf", file: "resume.pdf", data: []byte("junk"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ByExtension(tt.file, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
