package catalog

import (
	"github.com/google/btree"
)

// BTreeContainer keeps books sorted by id.
type BTreeContainer struct {
	tree *btree.BTreeG[*Book]
}

func NewBTreeContainer() *BTreeContainer {
	return &BTreeContainer{
		tree: btree.NewG(32, func(a, b *Book) bool { return a.Less(b) }),
	}
}

func (b *BTreeContainer) ReplaceOrInsert(book *Book) {
	b.tree.ReplaceOrInsert(book)
}

func (b *BTreeContainer) Delete(id int64) (*Book, bool) {
	return b.tree.Delete(&Book{Id: id})
}

func (b *BTreeContainer) Get(id int64) (*Book, bool) {
	return b.tree.Get(&Book{Id: id})
}

func (b *BTreeContainer) Len() int {
	return b.tree.Len()
}

func (b *BTreeContainer) Traverse(iterator func(book *Book) bool) {
	b.tree.Ascend(iterator)
}
