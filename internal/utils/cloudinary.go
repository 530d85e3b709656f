package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Cloudinary delivery-URL helpers. Historic cover images live on
// Cloudinary; these build and rewrite delivery URLs without talking to the
// service.

// CloudinaryImageOptions are the transformation knobs supported when
// building a delivery URL. Zero values are omitted from the URL.
type CloudinaryImageOptions struct {
	Width   int
	Height  int
	Crop    string
	Quality int
	Format  string
}

var publicIDPattern = regexp.MustCompile(`(?i)/upload/.*/([^/]+)\.(jpg|jpeg|png|gif|webp)`)

// CloudinaryImageURL builds a delivery URL for a public id, with an
// optional transformation segment.
func CloudinaryImageURL(cloudName, publicID string, opts *CloudinaryImageOptions) string {
	url := "https://res.cloudinary.com/" + cloudName + "/image/upload"

	if opts != nil {
		var transformations []string
		if opts.Width > 0 {
			transformations = append(transformations, "w_"+strconv.Itoa(opts.Width))
		}
		if opts.Height > 0 {
			transformations = append(transformations, "h_"+strconv.Itoa(opts.Height))
		}
		if opts.Crop != "" {
			transformations = append(transformations, "c_"+opts.Crop)
		}
		if opts.Quality > 0 {
			transformations = append(transformations, "q_"+strconv.Itoa(opts.Quality))
		}
		if opts.Format != "" {
			transformations = append(transformations, "f_"+opts.Format)
		}
		if len(transformations) > 0 {
			url += "/" + strings.Join(transformations, ",")
		}
	}

	return url + "/" + publicID
}

// ExtractPublicID pulls the public id out of a Cloudinary delivery URL.
// Returns "" when the URL does not look like one.
func ExtractPublicID(url string) string {
	match := publicIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// ConvertURLToWebFormat rewrites a Cloudinary HEIC delivery URL into a
// browser-displayable JPEG by injecting a format transformation after the
// upload segment. Non-Cloudinary URLs and non-HEIC URLs pass through
// unchanged.
func ConvertURLToWebFormat(url string) string {
	if !strings.Contains(url, "res.cloudinary.com") {
		return url
	}
	if !strings.HasSuffix(strings.ToLower(url), ".heic") {
		return url
	}
	return strings.Replace(url, "/upload/", "/upload/f_jpg,q_auto/", 1)
}

