package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/Yates-Labs/floriography/internal/orchestrator"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page is the data behind the main page.
type Page struct {
	Vocabulary *orchestrator.Vocabulary
	Flower     string
	Meaning    string
	NoneOption string

	// DatasetErr is set when the dataset could not be loaded
	DatasetErr error

	FlowerResult  *orchestrator.FlowerResult
	MeaningResult *orchestrator.MeaningResult
}

// HTMLPage writes the full page.
func HTMLPage(w io.Writer, page *Page) error {
	if page.NoneOption == "" {
		page.NoneOption = orchestrator.NoneOption
	}
	return pages.ExecuteTemplate(w, "page.html", page)
}

// HTMLFlower writes the flower result panel fragment.
func HTMLFlower(w io.Writer, result *orchestrator.FlowerResult) error {
	return pages.ExecuteTemplate(w, "flower_panel", result)
}

// HTMLMeaning writes the meaning result panel fragment.
func HTMLMeaning(w io.Writer, result *orchestrator.MeaningResult) error {
	return pages.ExecuteTemplate(w, "meaning_panel", result)
}

// HTMLDatasetError writes the dataset failure panel fragment.
func HTMLDatasetError(w io.Writer, err error) error {
	return pages.ExecuteTemplate(w, "dataset_error_panel", err)
}

// HTMLDevelopers writes the developer information page.
func HTMLDevelopers(w io.Writer) error {
	return pages.ExecuteTemplate(w, "developers.html", developers)
}

// Developer is a credit on the developer information page.
type Developer struct {
	Name string
	URL  string
}

var developers = []Developer{
	{Name: "Jessica", URL: "https://www.linkedin.com/in/jessica-lau-/"},
	{Name: "Mansur", URL: "https://www.linkedin.com/in/mansur-mahdee-880204231"},
	{Name: "Imrul", URL: "https://www.linkedin.com/in/imrul-nyc/"},
	{Name: "Zahava", URL: "https://www.linkedin.com/in/zahava-lowy-b294b023a/"},
	{Name: "Github", URL: "https://github.com/ImrulNYC/4900_Final"},
}
