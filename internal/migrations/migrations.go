// Package migrations carries the SQL schema of the PostgreSQL slot storage.
package migrations

import _ "embed"

//go:embed 01_kv_slots.up.sql
var KVSlots string
