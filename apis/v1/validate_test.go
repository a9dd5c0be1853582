package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func version(v int64) *int64 {
	return &v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr bool
	}{
		{"create ok", &CreatePageRequest{Title: "Fares"}, false},
		{"create blank title", &CreatePageRequest{Title: "  "}, true},
		{"create component without type", &CreatePageRequest{Title: "Fares", Components: []*ComponentInstance{{InstanceId: "a"}}}, true},
		{"update without version", &UpdatePageRequest{Id: "p", Title: "Fares"}, true},
		{"update overwrite", &UpdatePageRequest{Id: "p", Title: "Fares", Version: version(-1)}, false},
		{"update bad version", &UpdatePageRequest{Id: "p", Title: "Fares", Version: version(-2)}, true},
		{"add component", &AddComponentRequest{PageId: "p", TypeId: "heroBanner"}, false},
		{"add component without type", &AddComponentRequest{PageId: "p"}, true},
		{"list roots and parent", &ListPagesRequest{RootsOnly: true, ParentId: "p"}, true},
		{"check slug", &CheckSlugRequest{Slug: "fares"}, false},
		{"site theme missing", &UpdateSiteThemeRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCodec(t *testing.T) {
	c := Codec{}
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&CheckSlugResponse{Slug: "fares", Available: true})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"slug":"fares","available":true}`, string(data))

	var out CheckSlugResponse
	assert.NoError(t, c.Unmarshal(data, &out))
	assert.True(t, out.Available)
}
