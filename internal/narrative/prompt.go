package narrative

import (
	"fmt"
	"strings"
)

// DefaultMeaning stands in for a flower with no recorded meaning.
const DefaultMeaning = "No description available."

// AssemblePrompt builds the question sent to the model. label and meaning are
// embedded verbatim; an empty meaning becomes DefaultMeaning.
func AssemblePrompt(label, meaning string) string {
	if strings.TrimSpace(meaning) == "" {
		meaning = DefaultMeaning
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Why is the flower %s associated with the meaning '%s'? ", label, meaning))
	b.WriteString(fmt.Sprintf("Explain the cultural or historical significance behind the %s.", label))

	return b.String()
}
