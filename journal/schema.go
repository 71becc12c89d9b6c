// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	instrument TEXT NOT NULL,
	category TEXT NOT NULL,
	direction TEXT NOT NULL,
	account_size REAL NOT NULL,
	risk_percent REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	risk_amount REAL NOT NULL,
	lot_size REAL NOT NULL,
	risk_reward REAL NOT NULL,
	profit_pips REAL NOT NULL,
	loss_pips REAL NOT NULL,
	profit_dollars REAL NOT NULL,
	loss_dollars REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_created_at ON trades(created_at);
CREATE INDEX IF NOT EXISTS idx_trades_instrument ON trades(instrument);
`

const tradeColumns = `trade_id, created_at, instrument, category, direction,
	account_size, risk_percent, entry_price, exit_price, stop_loss,
	risk_amount, lot_size, risk_reward, profit_pips, loss_pips,
	profit_dollars, loss_dollars, notes`
