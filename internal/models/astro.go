package models

// AstroResponse is the decoded payload of the "people in space" API.
// Number is expected to equal len(People) but this is not enforced.
type AstroResponse struct {
	Message string       `json:"message"`
	Number  int          `json:"number"`
	People  []Assignment `json:"people"`
}

// Assignment is one person currently in space and the craft they are on.
type Assignment struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// Names returns the names of the people in response order.
func (r *AstroResponse) Names() []string {
	names := make([]string, 0, len(r.People))
	for _, p := range r.People {
		names = append(names, p.Name)
	}
	return names
}
