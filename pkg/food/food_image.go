package food

import (
	"Food-Sharing-Platform/internal/utils/imagesearch"
	"Food-Sharing-Platform/internal/utils/metrics"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeSlug    = regexp.MustCompile(`[^a-z0-9-]`)
)

// englishNames is also what gets stored as a listing's english_name.
var englishNames = map[string]string{
	"tavuklu pilav":    "chicken pilaf",
	"sebzeli salata":   "vegetable salad",
	"mercimek çorbası": "lentil soup",
	"balık ızgara":     "grilled fish",
	"köfte pilav":      "meatball pilaf",
	"pide":             "pide bread",
	"sebzeli makarna":  "vegetable pasta",
	"tavuk pilav":      "chicken pilaf",
	"ezogelin çorbası": "ezogelin soup",
}

// Regional dishes whose literal translation finds poor photos.
var searchTerms = map[string]string{
	"lahmacun":     "turkish pizza lahmacun",
	"mantı":        "turkish ravioli manti",
	"içli köfte":   "kibbeh appetizer",
	"baklava":      "turkish baklava dessert",
	"kuru fasulye": "turkish white bean stew",
	"iskender":     "iskender kebab",
	"çiğ köfte":    "turkish cig kofte",
	"sarma":        "stuffed grape leaves",
	"künefe":       "kunafa dessert",
}

// Image sources reported to metrics.
const (
	imageSourceClient  = "client"
	imageSourceLocal   = "local"
	imageSourceSearch  = "search"
	imageSourceDefault = "default"
)

func translateToEnglish(name string) string {
	if english, ok := englishNames[strings.ToLower(name)]; ok {
		return english
	}
	return name
}

func searchTerm(name string) string {
	if term, ok := searchTerms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return term
	}
	return translateToEnglish(name) + " turkish food"
}

// displaySlug is the file stem probed when listings are read back.
func displaySlug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// uploadSlug is the stricter stem probed when a listing is created.
func uploadSlug(name string) string {
	return unsafeSlug.ReplaceAllString(displaySlug(name), "")
}

type imageResolver struct {
	dir      string
	searcher imagesearch.ImageSearcher
	fallback string
}

func (r *imageResolver) exists(file string) bool {
	info, err := os.Stat(filepath.Join(r.dir, file))
	return err == nil && !info.IsDir()
}

// display returns the local image for name if one exists in any known extension.
func (r *imageResolver) display(name string) (string, bool) {
	slug := displaySlug(name)
	for _, ext := range imageExtensions {
		if r.exists(slug + ext) {
			return "images/" + slug + ext, true
		}
	}
	return "", false
}

// resolve picks the image of a new listing. It never fails: any search problem ends in
// the fallback image.
func (r *imageResolver) resolve(name string, clientImage string) string {
	image, source := r.pick(name, clientImage)
	metrics.FoodImageSourceTotal.WithLabelValues(source).Inc()
	return image
}

func (r *imageResolver) pick(name string, clientImage string) (string, string) {
	if clientImage = strings.TrimSpace(clientImage); clientImage != "" {
		return clientImage, imageSourceClient
	}

	local := uploadSlug(name) + ".jpg"
	if r.exists(local) {
		return "images/" + local, imageSourceLocal
	}

	if r.searcher == nil {
		return r.fallback, imageSourceDefault
	}

	term := searchTerm(name)
	url, err := r.searcher.SearchImage(term)
	if err != nil {
		log.Warnf("image search for %q failed: %v", term, err)
		return r.fallback, imageSourceDefault
	}
	return url, imageSourceSearch
}
