package interview

// WriteKind tags a catalog side effect a turn produced.
type WriteKind string

const (
	WriteEnsureRoom          WriteKind = "ensure_room"
	WriteEnsureFurnitureType WriteKind = "ensure_furniture_type"
	WriteAppendProductConfig WriteKind = "append_product_config"
)

// CatalogWrite describes one catalog mutation the caller must apply in the
// same transaction as the session update. Ensure writes are idempotent;
// append writes always add a row.
type CatalogWrite struct {
	Kind        WriteKind
	Room        string
	Furniture   string
	Description string
}

func ensureRoom(name string) CatalogWrite {
	return CatalogWrite{Kind: WriteEnsureRoom, Room: name}
}

func ensureFurnitureType(room, name string) CatalogWrite {
	return CatalogWrite{Kind: WriteEnsureFurnitureType, Room: room, Furniture: name}
}

func appendProductConfig(room, furniture, description string) CatalogWrite {
	return CatalogWrite{
		Kind:        WriteAppendProductConfig,
		Room:        room,
		Furniture:   furniture,
		Description: description,
	}
}
