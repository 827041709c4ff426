package reviews

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// maxImages caps how many photos a single review may carry.
const maxImages = 3

// EncodeImages turns uploaded attachments into self-contained data URLs,
// preserving selection order. Only the first three files are considered,
// and anything that does not sniff as an image is silently skipped,
// whatever the client claimed about its type.
func EncodeImages(files [][]byte) []string {
	if len(files) > maxImages {
		files = files[:maxImages]
	}
	var images []string
	for _, file := range files {
		mime := mimetype.Detect(file)
		if !strings.HasPrefix(mime.String(), "image/") {
			continue
		}
		images = append(images, fmt.Sprintf("data:%s;base64,%s",
			mime.String(), base64.StdEncoding.EncodeToString(file)))
	}
	return images
}
