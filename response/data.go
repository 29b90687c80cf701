package response

import (
	"strings"

	"github.com/sqldef/annadriver/collection"
	"github.com/sqldef/annadriver/internal/split"
	"github.com/sqldef/annadriver/tyson"
)

// decodeData parses the data section body (with the "s|data|:" tag
// already stripped) into a CollectionView (spec §4.6 "Data section").
func decodeData(text string) (*collection.View, error) {
	switch {
	case strings.HasPrefix(text, "ids["):
		return decodeIDs(text)
	case strings.HasPrefix(text, "objects{"):
		return decodeObjects(text)
	default:
		return nil, newDecodeError(text, "data section is neither ids[...] nor objects{...}")
	}
}

func decodeIDs(text string) (*collection.View, error) {
	if !strings.HasSuffix(text, "]") {
		return nil, newDecodeError(text, "ids data section must end with ']'")
	}
	inner := text[len("ids[") : len(text)-1]
	entries := split.TopLevel(inner, ',')
	ids := make([]tyson.Link, 0, len(entries))
	for _, e := range entries {
		v, err := tyson.Parse(e)
		if err != nil {
			return nil, err
		}
		link, err := v.AsLink()
		if err != nil {
			return nil, err
		}
		ids = append(ids, link)
	}
	return collection.NewIDs(ids), nil
}

func decodeObjects(text string) (*collection.View, error) {
	if !strings.HasSuffix(text, "}") {
		return nil, newDecodeError(text, "objects data section must end with '}'")
	}
	inner := text[len("objects{") : len(text)-1]
	entries := split.TopLevel(inner, ',')
	pairs := make([]collection.Pair, 0, len(entries))
	for _, e := range entries {
		linkText, valText, ok := split.SplitN(e, ':')
		if !ok {
			return nil, newDecodeError(e, "objects entry missing ':' separator")
		}
		linkVal, err := tyson.Parse(linkText)
		if err != nil {
			return nil, err
		}
		link, err := linkVal.AsLink()
		if err != nil {
			return nil, err
		}
		val, err := tyson.Parse(valText)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, collection.Pair{ID: link, Value: val})
	}
	return collection.NewObjects(pairs), nil
}
