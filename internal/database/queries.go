package database

const createGastosTable = `
CREATE TABLE IF NOT EXISTS gastos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	descricao TEXT NOT NULL,
	valor REAL NOT NULL,
	data_hora TEXT NOT NULL,
	categoria TEXT NOT NULL DEFAULT 'Outros',
	confirmado INTEGER NOT NULL DEFAULT 0
);
`

const selectTables = `
SELECT name, sql FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name;
`
