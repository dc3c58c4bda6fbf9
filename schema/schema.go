package schema

import _ "embed"

// ConfigSchema holds the JSON schema every gjallar configuration is
// validated against before it is decoded.
//go:embed config.schema.json
var ConfigSchema []byte
