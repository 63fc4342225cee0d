package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://venue.test/storage/"

func TestProduct_FirstImageBySortOrderThenID(t *testing.T) {
	p := Product{Images: []ProductImage{
		{DTO: DTO{ID: 5}, Image: "c.jpg", SortOrder: 2},
		{DTO: DTO{ID: 4}, Image: "b.jpg", SortOrder: 1},
		{DTO: DTO{ID: 3}, Image: "a.jpg", SortOrder: 1},
	}}

	first := p.FirstImage()
	require.NotNil(t, first)
	assert.Equal(t, "a.jpg", first.Image)
	// input slice untouched
	assert.Equal(t, "c.jpg", p.Images[0].Image)
}

func TestProduct_ResolveImages(t *testing.T) {
	p := Product{Images: []ProductImage{{Image: "storage/x.jpg"}, {Image: "http://o/y.jpg", SortOrder: 1}}}
	p.ResolveImages(base)

	require.NotNil(t, p.ImageURL)
	assert.Equal(t, base+"x.jpg", *p.ImageURL)
	assert.Equal(t, "http://o/y.jpg", *p.Images[1].URL)
}

func TestPackage_FirstImageURL(t *testing.T) {
	assert.Nil(t, Package{}.FirstImageURL(base))
	assert.Nil(t, Package{Image: strPtr("")}.FirstImageURL(base))
	assert.Equal(t, base+"pkg.jpg", *Package{Image: strPtr("pkg.jpg")}.FirstImageURL(base))
}

func TestCatalogItem_Snapshots(t *testing.T) {
	product := &CatalogItem{Type: ItemTypeProduct, Product: &Product{
		Name: "Rod", Slug: "rod", Price: dec("20.00"),
		Images: []ProductImage{{Image: "rod.jpg"}},
	}}
	assert.Equal(t, "Rod", product.Name())
	assert.Equal(t, "rod", product.Slug())
	assert.True(t, dec("20.00").Equal(product.Price()))
	assert.Equal(t, "rod.jpg", *product.ImagePath())
	assert.Nil(t, product.Features())

	pkg := &CatalogItem{Type: ItemTypePackage, Package: &Package{Name: "Family Day", Features: Features{"guests": 4.0}}}
	assert.Nil(t, pkg.ImagePath())
	assert.Equal(t, 4.0, pkg.Features()["guests"])

	var missing *CatalogItem
	assert.Equal(t, "", missing.Name())
	assert.Nil(t, missing.ImageURL(base))
}

func TestItemType_Valid(t *testing.T) {
	assert.True(t, ItemTypeProduct.Valid())
	assert.True(t, ItemTypePackage.Valid())
	assert.False(t, ItemType("voucher").Valid())
}

func TestCart_ItemRef(t *testing.T) {
	id := uint(4)

	typ, ref, err := Cart{ProductID: &id}.ItemRef()
	require.NoError(t, err)
	assert.Equal(t, ItemTypeProduct, typ)
	assert.Equal(t, id, ref)

	typ, _, err = Cart{PackageID: &id}.ItemRef()
	require.NoError(t, err)
	assert.Equal(t, ItemTypePackage, typ)

	_, _, err = Cart{}.ItemRef()
	assert.ErrorIs(t, err, ErrAmbiguousCartItem)

	_, _, err = Cart{ProductID: &id, PackageID: &id}.ItemRef()
	assert.ErrorIs(t, err, ErrAmbiguousCartItem)
}

func TestContent_ResolveImages(t *testing.T) {
	g := Gallery{Image: "gallery/lake.jpg"}
	g.ResolveImages(base)
	assert.Equal(t, base+"gallery/lake.jpg", *g.ImageURL)

	m := TeamMember{}
	m.ResolveImages(base)
	assert.Nil(t, m.PhotoURL)
}
