package dashboard

import (
	"io/fs"
	"testing"
)

func TestStaticAssetsServeStylesheetAndScript(t *testing.T) {
	assets := StaticAssets()
	for _, name := range []string{"admin.css", "notices.js"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}
