// Package huggingface downloads tokenizer assets (vocabulary and merges
// files) from HuggingFace, so a demo or pipeline can be pointed at a model id
// instead of local files.
//
// Only the small tokenizer files are fetched; model weights are consumed by a
// separate system and are not handled here.
package huggingface

import (
	"fmt"
	"os"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gomlx/ml/data"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Assets per tokenizer family, as named in HuggingFace repositories.
var (
	WordPieceAssets     = []string{"vocab.txt"}
	BPEAssets           = []string{"vocab.json", "merges.txt"}
	SentencePieceAssets = []string{"tokenizer.model"}
)

// Download fetches the given files of the HuggingFace model hfID (e.g.
// "bert-base-uncased") into cacheDir, skipping files already present. It
// returns the local paths in the same order as files.
func Download(hfID string, files []string, cacheDir string) ([]string, error) {
	cacheDir = data.ReplaceTildeInDir(cacheDir)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating cache directory %q", cacheDir)
	}

	localPaths := make([]string, 0, len(files))
	for _, file := range files {
		url := fmt.Sprintf("https://huggingface.co/%s/resolve/main/%s", hfID, file)
		localPath := path.Join(cacheDir, file)
		if _, err := os.Stat(localPath); err == nil {
			klog.V(1).Infof("%s already cached at %s", file, localPath)
			localPaths = append(localPaths, localPath)
			continue
		}
		if err := data.DownloadIfMissing(url, localPath, ""); err != nil {
			return nil, errors.Wrapf(err, "downloading %s for %q", file, hfID)
		}
		if info, err := os.Stat(localPath); err == nil {
			klog.Infof("downloaded %s (%s) from %q", file, humanize.Bytes(uint64(info.Size())), hfID)
		}
		localPaths = append(localPaths, localPath)
	}
	return localPaths, nil
}
