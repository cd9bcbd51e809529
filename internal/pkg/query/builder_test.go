package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "slug").
		Build()

	assert.Equal(t, "SELECT product_id, name, slug FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("status", "active")).
		Where(Eq("category_id", "cat-1")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE status = @p0 AND category_id = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "active",
		"p1": "cat-1",
	}, stmt.Params)
}

func TestBuilder_OrCondition(t *testing.T) {
	stmt := From("offers").
		Select("offer_id").
		Where(Or(
			InUnnest("product_id", []string{"p1"}),
			InUnnest("category_id", []string{"c1"}),
			InUnnest("tag_id", []string{"t1", "t2"}),
		)).
		Build()

	assert.Equal(t,
		"SELECT offer_id FROM offers WHERE (product_id IN UNNEST(@p0) OR category_id IN UNNEST(@p1) OR tag_id IN UNNEST(@p2))",
		stmt.SQL)
	assert.Len(t, stmt.Params, 3)
	assert.Equal(t, []string{"t1", "t2"}, stmt.Params["p2"])
}

func TestBuilder_OrWithNullConditions(t *testing.T) {
	stmt := From("offers").
		Select("offer_id").
		Where(Or(IsNull("start_at"), Lte("start_at", "T"))).
		Where(Or(IsNull("end_at"), Gte("end_at", "T"))).
		Build()

	assert.Equal(t,
		"SELECT offer_id FROM offers WHERE (start_at IS NULL OR start_at <= @p0) AND (end_at IS NULL OR end_at >= @p1)",
		stmt.SQL)
}

func TestBuilder_Exists(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Exists("SELECT 1 FROM product_tags t WHERE t.product_id = products.product_id AND t.tag_id IN UNNEST(@%s)", []string{"t1"})).
		Build()

	assert.Equal(t,
		"SELECT product_id FROM products WHERE EXISTS (SELECT 1 FROM product_tags t WHERE t.product_id = products.product_id AND t.tag_id IN UNNEST(@p0))",
		stmt.SQL)
	assert.Equal(t, []string{"t1"}, stmt.Params["p0"])
}

func TestBuilder_Like(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Like("LOWER(name)", "%phone%")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE LOWER(name) LIKE @p0", stmt.SQL)
	assert.Equal(t, "%phone%", stmt.Params["p0"])
}

func TestBuilder_MultiTermOrder(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("name", Asc).
		OrderBy("product_id", Asc).
		Limit(20).
		Offset(40).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY name ASC, product_id ASC LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, int64(20), stmt.Params["limit"])
	assert.Equal(t, int64(40), stmt.Params["offset"])
}

func TestBuilder_CountDropsPaginationAndOrder(t *testing.T) {
	base := From("products").
		Select("product_id", "name").
		Where(Eq("status", "active")).
		OrderBy("name", Desc).
		Limit(20).
		Offset(20)

	stmt := base.Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE status = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": "active"}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id").Where(Eq("status", "active"))

	withOrder := base.OrderBy("name", Asc)
	count := base.Count()

	assert.NotContains(t, base.Build().SQL, "ORDER BY")
	assert.Contains(t, withOrder.Build().SQL, "ORDER BY name ASC")
	assert.Contains(t, count.Build().SQL, "COUNT(*)")
}
