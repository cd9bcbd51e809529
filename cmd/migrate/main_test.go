package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDDLStatements(t *testing.T) {
	content := `
-- products live here
CREATE TABLE products (
  product_id STRING(36) NOT NULL,
) PRIMARY KEY (product_id);

CREATE INDEX idx_products_status ON products(status);
`

	stmts := ddlStatements(content)

	assert.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE products")
	assert.NotContains(t, stmts[0], "--")
	assert.Contains(t, stmts[1], "CREATE INDEX")
}

func TestDDLStatements_CommentOnlyFile(t *testing.T) {
	assert.Empty(t, ddlStatements("-- nothing to do yet\n"))
}
