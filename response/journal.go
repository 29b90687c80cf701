package response

import "github.com/sqldef/annadriver/collection"

// Journal is the decoded result of a single query (spec §4.6): whether
// the server reported success, the resulting CollectionView, and the
// meta summary describing which stage produced it.
type Journal struct {
	OK   bool
	Data *collection.View
	Meta *Meta
}

// Parse decodes a raw reply envelope into a Journal.
func Parse(raw string) (*Journal, error) {
	env, err := splitEnvelope(raw)
	if err != nil {
		return nil, err
	}
	data, err := decodeData(env.data)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(env.meta)
	if err != nil {
		return nil, err
	}
	return &Journal{OK: env.ok, Data: data, Meta: meta}, nil
}
