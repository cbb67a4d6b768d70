package astro

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/models"
	"github.com/tidwall/gjson"
)

// decode checks that body has the AstroResponse shape before unmarshalling.
// encoding/json alone silently zero-fills missing fields.
func decode(body []byte) (*models.AstroResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", common.ErrDecode)
	}

	fields := gjson.GetManyBytes(body, "message", "number", "people")
	message, number, people := fields[0], fields[1], fields[2]

	switch {
	case message.Type != gjson.String:
		return nil, fmt.Errorf("%w: %q must be a string", common.ErrDecode, "message")
	case number.Type != gjson.Number:
		return nil, fmt.Errorf("%w: %q must be a number", common.ErrDecode, "number")
	case number.Int() < 0:
		return nil, fmt.Errorf("%w: %q must not be negative", common.ErrDecode, "number")
	case !people.IsArray():
		return nil, fmt.Errorf("%w: %q must be an array", common.ErrDecode, "people")
	}

	var resp models.AstroResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrDecode, err)
	}

	return &resp, nil
}
