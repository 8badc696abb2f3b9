package transfer

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nvollmer/lanbridge/internal/domain"
)

// Properties is the transmitted attribute bag for one file item. Keys
// mirror the wire protocol; an absent key means zero/false.
type Properties map[string]any

// Wire keys
const (
	propName         = "name"
	propSize         = "size"
	propReadOnly     = "read_only"
	propExecutable   = "executable"
	propCreated      = "created"
	propLastRead     = "last_read"
	propLastModified = "last_modified"
)

// decode maps the bag onto a metadata record. Decoding is weakly typed
// because numeric values arrive as float64 or strings depending on the
// transport codec.
func (p Properties) decode() (domain.Metadata, error) {
	var md domain.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.Metadata{}, err
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return domain.Metadata{}, fmt.Errorf("decode properties: %w", err)
	}
	return md, nil
}

// Properties returns the wire bag for this file's record, the inverse of
// NewFromProperties.
func (f *File) Properties() Properties {
	return Properties{
		propName:         f.md.Name,
		propSize:         f.md.Size,
		propReadOnly:     f.md.ReadOnly,
		propExecutable:   f.md.Executable,
		propCreated:      f.md.Created,
		propLastRead:     f.md.LastRead,
		propLastModified: f.md.LastModified,
	}
}
