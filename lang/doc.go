// Package lang resolves localization data with layered {{NAME}} variables.
//
// A language file has two category trees: "refs", reference variables, and
// "data", the items served by lookups. A separate common file holds
// variables shared by every language. Items are addressed with dot-paths of
// the form "category.item".
//
// # Variables
//
// Variables are referenced with a placeholder holding their prefixed name:
//
//	{{COM:category.item}}  // common variable
//	{{REF:category.item}}  // reference variable of the same language
//
// Resolution happens once, in [New]:
//
//  1. Common variables are substituted into each other.
//  2. For each language, common variables are substituted into its
//     reference variables, which are then substituted into each other.
//  3. Common and reference variables are substituted into the data tree,
//     which is flattened for dot-path lookups.
//
// Variables referencing other variables are resolved through a bounded
// number of rounds ([WithReplacementLevels], default
// [DefaultReplacementLevels]). Each round resolves one hop of a chain.
// Placeholders left after the last round, including those of cycles, stay
// in the text verbatim; they are never an error.
//
// # Lookups
//
//	l, err := lang.New(files, lang.WithCommon(common))
//
//	raw, err := l.GetRaw("menu.title", "en")
//	ref, err := l.GetRef("names.app", "en")
//	com, err := l.GetCom("brand.name")
//
//	title, err := lang.Get(l, "menu.title", "en", mapper.String,
//		lang.Flat{"USER": "Ada"})
//
// Caller variables are applied after resolution, on a copy of the stored
// value. A [Nested] scope is converted to a [Flat] one with "category.item"
// names before it is applied.
//
// # Errors
//
// Lookups fail with [ErrInvalidLanguage] for unknown language codes and with
// [ErrInvalidLocation] for unknown dot-paths. Both are [*Error] values
// carrying structured attributes for logging; invalid locations include up
// to three similar locations as "suggestions".
//
// # Files
//
// Package lang does not read files. Package source discovers, decodes, and
// loads JSON and YAML language files from an [io/fs.FS].
package lang
