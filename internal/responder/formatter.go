package responder

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"

	"github.com/dadrus/gjallar/internal/x/stringx"
)

var supportedMediaTypes = []contenttype.MediaType{ //nolint:gochecknoglobals
	contenttype.NewMediaType("text/html"),
	contenttype.NewMediaType("application/json"),
	contenttype.NewMediaType("text/plain"),
	contenttype.NewMediaType("application/xml"),
}

type messageBody struct {
	XMLName xml.Name `json:"-"       xml:"error"`
	Message string   `json:"message" xml:"message"`
}

func format(req *http.Request, message string) (contenttype.MediaType, []byte, error) {
	mediaType, _, err := contenttype.GetAcceptableMediaType(req, supportedMediaTypes)
	if err != nil {
		return contenttype.MediaType{}, nil, err
	}

	return formatAs(mediaType, message)
}

// Format based on the given content type
func formatAs(mediaType contenttype.MediaType, message string) (contenttype.MediaType, []byte, error) {
	switch mediaType.Subtype {
	case "html":
		return mediaType, stringx.ToBytes(fmt.Sprintf("<p>%s</p>", message)), nil
	case "json":
		res, err := json.Marshal(messageBody{Message: message})

		return mediaType, res, err
	case "xml":
		res, err := xml.Marshal(messageBody{Message: message})

		return mediaType, res, err
	case "plain":
		fallthrough
	default:
		return supportedMediaTypes[2], stringx.ToBytes(message), nil
	}
}
