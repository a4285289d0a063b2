package source

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"

	"github.com/ardnew/linguini/lang"
	"github.com/ardnew/linguini/log"
)

// CommonCode is the language code position that names the common file,
// as in "lang.common.json".
const CommonCode = "common"

// listing is the result of scanning a directory for the files of one base
// name.
type listing struct {
	langs  map[string]string // language code -> file name
	common string
}

// Open loads the language files named base in directory dir.
// See [Load].
func Open(dir, base string, opts ...Option) (*lang.Linguini, error) {
	return Load(os.DirFS(dir), base, opts...)
}

// Load reads, decodes, and resolves the language files named base in the
// root of fsys into a [lang.Linguini].
//
// Language files are named "{base}.{code}.json", "{base}.{code}.yaml", or
// "{base}.{code}.yml". The common file, if present, is "{base}.common" with
// one of the same extensions, unless overridden with [WithCommonFile].
//
// Files that fail to decode abort loading with the decoder's error.
func Load(fsys fs.FS, base string, opts ...Option) (*lang.Linguini, error) {
	cfg := makeConfig(opts...)

	ls, err := list(fsys, base)
	if err != nil {
		return nil, err
	}

	langOpts := slices.Clone(cfg.lang)

	common, err := loadCommon(fsys, ls.common, cfg.commonFile)
	if err != nil {
		return nil, err
	}

	if common != nil {
		langOpts = append(langOpts, lang.WithCommon(common))
	}

	files := make(map[string]lang.File, len(ls.langs))

	for _, code := range slices.Sorted(maps.Keys(ls.langs)) {
		name := ls.langs[code]

		file, err := readFile(fsys, name)
		if err != nil {
			return nil, err
		}

		files[code] = file

		log.Debug("language file loaded",
			slog.String("lang", code),
			slog.String("file", name),
		)
	}

	return lang.New(files, langOpts...)
}

// Languages returns the sorted language codes of the files named base in
// the root of fsys.
func Languages(fsys fs.FS, base string) ([]string, error) {
	ls, err := list(fsys, base)
	if err != nil {
		return nil, err
	}

	return slices.Sorted(maps.Keys(ls.langs)), nil
}

func pattern(base string) *regexp.Regexp {
	return regexp.MustCompile(
		`^` + regexp.QuoteMeta(base) + `\.([A-Za-z0-9_-]+)\.(?i:json|ya?ml)$`,
	)
}

func list(fsys fs.FS, base string) (listing, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return listing{}, err
	}

	ls := listing{langs: make(map[string]string)}
	rex := pattern(base)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := rex.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		code := match[1]

		prev := ls.langs[code]
		if code == CommonCode {
			prev = ls.common
		}

		if prev != "" {
			return listing{}, lang.ErrDuplicateLanguage.
				Wrap(fmt.Errorf("%s and %s", prev, entry.Name())).
				With(slog.String("lang", code))
		}

		if code == CommonCode {
			ls.common = entry.Name()
		} else {
			ls.langs[code] = entry.Name()
		}
	}

	return ls, nil
}

// loadCommon reads the common category tree from the override path, if
// given, or else from the discovered file name in fsys. It returns nil if
// neither exists.
func loadCommon(fsys fs.FS, name, override string) (lang.Object, error) {
	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, lang.ErrCommonNotFound.
					Wrap(err).
					With(slog.String("file", override))
			}

			return nil, err
		}

		return decodeTree(override, data)
	}

	if name == "" {
		return nil, nil
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	return decodeTree(name, data)
}

func readFile(fsys fs.FS, name string) (lang.File, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return lang.File{}, err
	}

	tree, err := decodeTree(name, data)
	if err != nil {
		return lang.File{}, err
	}

	var file lang.File

	if file.Data, err = section(name, tree, "data"); err != nil {
		return lang.File{}, err
	}

	if file.Refs, err = section(name, tree, "refs"); err != nil {
		return lang.File{}, err
	}

	return file, nil
}

// section returns the category tree stored under key, or nil if absent.
func section(name string, tree lang.Object, key string) (lang.Object, error) {
	switch v := tree[key].(type) {
	case nil, lang.Null:
		return nil, nil
	case lang.Object:
		return v, nil
	default:
		return nil, lang.ErrInvalidValue.
			Wrap(fmt.Errorf("%s: section %q is a %s, not an object", name, key, v.Kind())).
			With(slog.String("file", name), slog.String("section", key))
	}
}
