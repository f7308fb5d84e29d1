package database

// Storefront schema. Orders are append-only; items are stored as a JSON
// snapshot because nothing queries inside an order after checkout.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
	    id CHAR(36) PRIMARY KEY,
	    name VARCHAR(255) NOT NULL,
	    price DECIMAL(10,2) NOT NULL,
	    description TEXT,
	    image VARCHAR(32),
	    stock INT NOT NULL DEFAULT 100,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS cart_items (
	    id CHAR(36) PRIMARY KEY,
	    product_id CHAR(36) NOT NULL,
	    name VARCHAR(255) NOT NULL,
	    price DECIMAL(10,2) NOT NULL,
	    qty INT NOT NULL DEFAULT 1,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    UNIQUE KEY uk_product_id (product_id),
	    FOREIGN KEY (product_id) REFERENCES products(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
	    id CHAR(36) PRIMARY KEY,
	    order_id VARCHAR(64) NOT NULL,
	    customer_name VARCHAR(255) NOT NULL,
	    customer_email VARCHAR(255) NOT NULL,
	    items JSON NOT NULL,
	    total DECIMAL(10,2) NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    UNIQUE KEY uk_order_id (order_id),
	    INDEX idx_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// SetupSchema creates the storefront tables if they do not exist.
func (db *DB) SetupSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DropSchema removes all storefront tables. Used by tests and local resets.
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS cart_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
