package domain

// CollectionKind names a per-user recipe membership set.
type CollectionKind string

const (
	CollectionFavorites    CollectionKind = "favorites"
	CollectionShoppingCart CollectionKind = "shopping_cart"
)

// Valid reports whether k is a known collection.
func (k CollectionKind) Valid() bool {
	return k == CollectionFavorites || k == CollectionShoppingCart
}

// AlreadyMemberError returns the conflict error for a duplicate add to k.
func (k CollectionKind) AlreadyMemberError() error {
	if k == CollectionShoppingCart {
		return ErrAlreadyInShoppingCart
	}
	return ErrAlreadyInFavorites
}

// NotMemberError returns the error for removing an absent recipe from k.
func (k CollectionKind) NotMemberError() error {
	if k == CollectionShoppingCart {
		return ErrNotInShoppingCart
	}
	return ErrNotInFavorites
}
