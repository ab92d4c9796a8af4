package order

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (id, customer_name, customer_email, customer_cpf, customer_phone, customer_address, total_amount, status, idempotency_key, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING id
	`
	selectOrderByKeyQuery = `SELECT id FROM orders WHERE idempotency_key = $1`
	insertOrderItemQuery  = `
		INSERT INTO order_items (order_id, product_id, product_name, price, quantity, total_price)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`
	getOrderQuery = `
		SELECT id, customer_name, customer_email, customer_cpf, customer_phone, customer_address, total_amount, status, payment_id, payment_status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	listOrdersQuery = `
		SELECT id, customer_name, customer_email, customer_cpf, customer_phone, customer_address, total_amount, status, payment_id, payment_status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`
	listOrderItemsQuery = `
		SELECT id, order_id, product_id, product_name, price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	updateOrderStatusQuery = `UPDATE orders SET status = $1, payment_status = $2, updated_at = $3 WHERE id = $4`
	setOrderPaymentIDQuery = `UPDATE orders SET payment_id = $1, updated_at = $2 WHERE id = $3`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRow(insertOrderQuery,
		ord.ID, ord.CustomerName, ord.CustomerEmail, ord.CustomerCPF, ord.CustomerPhone, ord.CustomerAddress,
		ord.TotalAmount, ord.Status, ord.IdempotencyKey, ord.CreatedAt, ord.UpdatedAt).Scan(&id)
	if err == sql.ErrNoRows {
		// the key was already used; hand back the order created by the
		// earlier submission
		var existingID string
		if err := tx.QueryRow(selectOrderByKeyQuery, ord.IdempotencyKey).Scan(&existingID); err != nil {
			return Order{}, err
		}
		if err := tx.Commit(); err != nil {
			return Order{}, err
		}
		return r.GetByID(existingID)
	}
	if err != nil {
		return Order{}, err
	}

	for i := range ord.Items {
		ord.Items[i].OrderID = id
		if err := tx.QueryRow(insertOrderItemQuery,
			id, ord.Items[i].ProductID, ord.Items[i].ProductName, ord.Items[i].Price,
			ord.Items[i].Quantity, ord.Items[i].TotalPrice).Scan(&ord.Items[i].ID); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	ord.ID = id
	return ord, nil
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	var (
		ord           Order
		paymentID     sql.NullString
		paymentStatus sql.NullString
	)
	err := r.db.QueryRow(getOrderQuery, id).Scan(
		&ord.ID, &ord.CustomerName, &ord.CustomerEmail, &ord.CustomerCPF, &ord.CustomerPhone, &ord.CustomerAddress,
		&ord.TotalAmount, &ord.Status, &paymentID, &paymentStatus, &ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	ord.PaymentID = paymentID.String
	ord.PaymentStatus = paymentStatus.String

	rows, err := r.db.Query(listOrderItemsQuery, id)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	ord.Items = make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Price, &it.Quantity, &it.TotalPrice); err != nil {
			return Order{}, err
		}
		ord.Items = append(ord.Items, it)
	}
	return ord, rows.Err()
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var (
			ord           Order
			paymentID     sql.NullString
			paymentStatus sql.NullString
		)
		if err := rows.Scan(&ord.ID, &ord.CustomerName, &ord.CustomerEmail, &ord.CustomerCPF, &ord.CustomerPhone, &ord.CustomerAddress,
			&ord.TotalAmount, &ord.Status, &paymentID, &paymentStatus, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		ord.PaymentID = paymentID.String
		ord.PaymentStatus = paymentStatus.String
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id string, status, paymentStatus string, updatedAt string) error {
	res, err := r.db.Exec(updateOrderStatusQuery, status, paymentStatus, updatedAt, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetPaymentID(id string, paymentID string, updatedAt string) error {
	res, err := r.db.Exec(setOrderPaymentIDQuery, paymentID, updatedAt, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
