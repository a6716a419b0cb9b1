package main

import (
	"flag"
	"path"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/ml/data"
	"github.com/janpfeifer/must"

	"github.com/gomlx/tensorizer/bpe"
	"github.com/gomlx/tensorizer/download/huggingface"
	"github.com/gomlx/tensorizer/sentencepiece"
	"github.com/gomlx/tensorizer/tensorize"
	"github.com/gomlx/tensorizer/vocabulary"
	"github.com/gomlx/tensorizer/wordpiece"
)

var (
	flagDataDir = flag.String("data", "~/work/tensorize", "Directory to cache downloaded vocabulary files.")
	flagVocab   = flag.String("vocab", "", "Tokenizer vocabulary: a vocab.txt file for wordpiece, a directory with "+
		"vocab.json and merges.txt for bpe, a tokenizer.model file for sentencepiece. Relative to --data directory.")
	flagHFModel = flag.String("hf", "", "HuggingFace model id (e.g. \"bert-base-uncased\") to download the tokenizer "+
		"assets from; takes precedence over --vocab.")
	flagBackend = flag.String("tokenizer", "whitespace", "Tokenizer backend: whitespace, wordpiece, bpe or sentencepiece.")
	flagColumns = flag.String("columns", "text", "Comma-separated column names. Each input line holds these columns, tab-separated.")
	flagVariant = flag.String("variant", "bert", "Encoding convention: bert or roberta.")
	flagMaxLen  = flag.Int("max_seq_len", 0, "Maximum total sequence length, markers included. 0 keeps the variant default.")
)

// demoSymbols backs the whitespace tokenizer, so the demo works without any
// vocabulary file. Everything else resolves to "[UNK]".
var demoSymbols = []string{
	"[PAD]", "[UNK]", "[CLS]", "[SEP]", "[MASK]",
	"hello", "world", "a", "b", "c",
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
}

// resolvePath makes a flag path absolute, anchoring relative ones at --data.
func resolvePath(p string) string {
	p = data.ReplaceTildeInDir(p)
	if !path.IsAbs(p) {
		dataDir := data.ReplaceTildeInDir(*flagDataDir)
		p = path.Join(dataDir, p)
	}
	return p
}

// fetchAssets downloads the tokenizer assets of --hf when set, and otherwise
// resolves --vocab. It returns the local paths.
func fetchAssets(files []string) []string {
	if *flagHFModel != "" {
		cacheDir := path.Join(data.ReplaceTildeInDir(*flagDataDir), *flagHFModel)
		return must.M1(huggingface.Download(*flagHFModel, files, cacheDir))
	}
	if *flagVocab == "" {
		exceptions.Panicf("--tokenizer=%s needs --vocab or --hf", *flagBackend)
	}
	return []string{resolvePath(*flagVocab)}
}

// buildConfig assembles the encoding policy from the variant and override flags.
func buildConfig() *tensorize.Config {
	var config *tensorize.Config
	switch *flagVariant {
	case "bert":
		config = tensorize.BertConfig()
	case "roberta":
		config = tensorize.RobertaConfig()
	default:
		exceptions.Panicf("unknown --variant %q, wanted bert or roberta", *flagVariant)
	}
	config.Columns = strings.Split(*flagColumns, ",")
	if *flagMaxLen > 0 {
		config.MaxSeqLen = *flagMaxLen
	}
	return config
}

// BuildTensorizer constructs the tokenizer backend and vocabulary selected by
// the flags and returns the ready Tensorizer. Panics in case of error.
func BuildTensorizer() (*tensorize.Tensorizer, *tensorize.Config) {
	config := buildConfig()
	switch *flagBackend {
	case "whitespace":
		vocab := must.M1(vocabulary.New(demoSymbols, vocabulary.BertSpecial()))
		return tensorize.New(config, tensorize.Whitespace{Lowercase: true}, vocab), config

	case "wordpiece":
		paths := fetchAssets(huggingface.WordPieceAssets)
		tokenizer := must.M1(wordpiece.FromVocabFile(paths[0]))
		vocab := must.M1(vocabulary.New(tokenizer.Symbols(), vocabulary.BertSpecial()))
		return tensorize.New(config, tokenizer, vocab), config

	case "bpe":
		var dir string
		if *flagHFModel != "" {
			paths := fetchAssets(huggingface.BPEAssets)
			dir = path.Dir(paths[0])
		} else {
			if *flagVocab == "" {
				exceptions.Panicf("--tokenizer=bpe needs --vocab or --hf")
			}
			dir = resolvePath(*flagVocab)
		}
		tokenizer := must.M1(bpe.Load(dir, bpe.RobertaControlIDs()))
		return tensorize.New(config, tokenizer, tokenizer), config

	case "sentencepiece":
		paths := fetchAssets(huggingface.SentencePieceAssets)
		tokenizer := must.M1(sentencepiece.NewFromPath(paths[0], sentencepiece.GemmaControlIDs()))
		return tensorize.New(config, tokenizer, tokenizer), config
	}
	exceptions.Panicf("unknown --tokenizer %q, wanted whitespace, wordpiece, bpe or sentencepiece", *flagBackend)
	return nil, nil
}
