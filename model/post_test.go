package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestComponentValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Component
		wantErr bool
	}{
		{"image ok", Component{Type: ComponentImage, Props: bson.M{"url": "/uploads/image/a.png"}}, false},
		{"image missing url", Component{Type: ComponentImage, Props: bson.M{"alt": "x"}}, true},
		{"image empty url", Component{Type: ComponentImage, Props: bson.M{"url": ""}}, true},
		{"code block ok", Component{Type: ComponentCodeBlock, Props: bson.M{"code": "fmt.Println()", "language": "go"}}, false},
		{"code block missing code", Component{Type: ComponentCodeBlock, Props: bson.M{"language": "go"}}, true},
		{"text editor ok", Component{Type: ComponentTextEditor, Props: bson.M{"content": "<p>hi</p>"}}, false},
		{"unknown kind rejected", Component{Type: "Carousel", Props: bson.M{"urls": "a,b"}}, true},
		{"empty kind rejected", Component{Props: bson.M{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileType(t *testing.T) {
	assert.Equal(t, MediaImage, FileType("image/png"))
	assert.Equal(t, MediaImage, FileType("image/webp"))
	assert.Equal(t, MediaVideo, FileType("video/mp4"))
	assert.Equal(t, MediaDocument, FileType("application/pdf"))
	assert.Equal(t, MediaDocument, FileType("text/plain"))
	assert.Equal(t, MediaOther, FileType("application/zip"))
	assert.Equal(t, MediaOther, FileType(""))
}
