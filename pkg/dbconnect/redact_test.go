package dbconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	assert.Equal(t, "host=db user=app password=*** dbname=erp",
		redact("host=db user=app password=secret dbname=erp"))
	assert.Equal(t, "postgres://app:***@db:5432/erp",
		redact("postgres://app:secret@db:5432/erp"))
	assert.Equal(t, `host='db' password=*** dbname='erp'`,
		redact(`host='db' password='my \'secret\' word' dbname='erp'`))
	assert.Equal(t, `user='app' password=*** dbname='erp'`,
		redact(`user='app' password='' dbname='erp'`))
	assert.Equal(t, "file:products.db", redact("file:products.db"))
}
