package errorhandler

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"

	"github.com/dadrus/gjallar/internal/x/stringx"
)

//nolint:gochecknoglobals
var (
	plainText = contenttype.NewMediaType("text/plain")

	// Order expresses server preference if the client accepts multiple types.
	supportedMediaTypes = []contenttype.MediaType{
		contenttype.NewMediaType("text/html"),
		contenttype.NewMediaType("application/json"),
		plainText,
		contenttype.NewMediaType("application/xml"),
	}
)

// format renders the given error according to the Accept header of req.
func format(req *http.Request, body error) (contenttype.MediaType, []byte, error) {
	mediaType, _, err := contenttype.GetAcceptableMediaType(req, supportedMediaTypes)
	if err != nil {
		return contenttype.MediaType{}, nil, err
	}

	switch mediaType.Subtype {
	case "html":
		return mediaType, fmt.Appendf(nil, "<p>%s</p>", body), nil
	case "json":
		raw, err := json.Marshal(body)

		return mediaType, raw, err
	case "xml":
		raw, err := xml.Marshal(body)

		return mediaType, raw, err
	default:
		return plainText, stringx.ToBytes(body.Error()), nil
	}
}
