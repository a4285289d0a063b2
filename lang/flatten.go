package lang

// Flatten maps every item of a category tree to its dot-path,
// "category.item", keeping the item value itself.
//
// Members of tree that are not objects are not categories and are skipped.
func Flatten(tree Object) map[string]Value {
	out := make(map[string]Value)

	for category, items := range tree {
		obj, ok := items.(Object)
		if !ok {
			continue
		}

		for item, value := range obj {
			out[category+"."+item] = value
		}
	}

	return out
}

// FlattenVariables maps every item of a category tree to a variable named
// prefix+"category.item" holding the item's replacement text (see [Text]).
// Items without replacement text, such as objects, are skipped.
func FlattenVariables(tree Object, prefix string) Flat {
	out := make(Flat)

	for category, items := range tree {
		obj, ok := items.(Object)
		if !ok {
			continue
		}

		for item, value := range obj {
			if text, ok := Text(value); ok {
				out[prefix+category+"."+item] = text
			}
		}
	}

	return out
}
