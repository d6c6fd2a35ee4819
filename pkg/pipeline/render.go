package pipeline

import (
	"bytes"

	"github.com/matzehuels/taxo/pkg/categorizer"
	"github.com/matzehuels/taxo/pkg/errors"
	"github.com/matzehuels/taxo/pkg/render"
	"github.com/matzehuels/taxo/pkg/taxoio"
)

// renderArtifact materializes one output format from the built tree.
// The traversal formats drain the tree's lazy line sequences; the
// graph formats go through pkg/render.
func renderArtifact(cat *categorizer.Categorizer, format string) ([]byte, error) {
	switch format {
	case FormatPre:
		var buf bytes.Buffer
		if err := taxoio.WriteLines(&buf, cat.Preorder()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatPost:
		var buf bytes.Buffer
		if err := taxoio.WriteLines(&buf, cat.Postorder()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatJSON:
		var buf bytes.Buffer
		if err := taxoio.WriteJSON(cat.Tree(), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatDOT:
		return []byte(render.ToDOT(cat.Tree(), render.Options{})), nil

	case FormatSVG:
		dot := render.ToDOT(cat.Tree(), render.Options{})
		return render.RenderSVG(dot)

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %q", format)
	}
}

// ArtifactFilename returns the conventional output filename for a
// format: pre.txt and post.txt for the traversals, tree.<ext> for the
// graph formats.
func ArtifactFilename(format string) string {
	switch format {
	case FormatPre:
		return "pre.txt"
	case FormatPost:
		return "post.txt"
	default:
		return "tree." + format
	}
}
