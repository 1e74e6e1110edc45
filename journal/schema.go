// journal/schema.go
package journal

// Prices and money are stored as TEXT so decimals come back exactly as
// they were written.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	entry_time DATETIME NOT NULL,
	exit_time DATETIME NOT NULL,
	instrument TEXT NOT NULL,
	order_type TEXT NOT NULL,
	entry_price TEXT NOT NULL,
	exit_price TEXT NOT NULL,
	position_size TEXT NOT NULL,
	stop_loss TEXT,
	take_profit TEXT,
	status TEXT NOT NULL,
	net_profit TEXT NOT NULL,
	r_multiple TEXT,
	rationale TEXT NOT NULL DEFAULT '',
	review TEXT NOT NULL DEFAULT '',
	emotions TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
`

const tradeColumns = `trade_id, entry_time, exit_time, instrument, order_type,
	entry_price, exit_price, position_size, stop_loss, take_profit,
	status, net_profit, r_multiple, rationale, review, emotions, tags,
	created_at, updated_at`
