package data

import _ "embed"

//go:embed reference.json
var ReferenceData []byte
