package database

import (
	"fmt"

	"gorm.io/gorm"
)

// The purchase repository never touches the purchases table directly; every
// operation goes through one of these functions. They are installed at startup,
// after AutoMigrate has created the table.
var procedures = []string{
	`CREATE OR REPLACE FUNCTION sp_purchase_create(
		p_account_id bigint,
		p_product_name varchar,
		p_quantity numeric,
		p_measurement_unit varchar,
		p_unit_price numeric,
		p_purchase_date date,
		p_category varchar,
		p_purchase_location varchar
	) RETURNS SETOF purchases AS $$
		INSERT INTO purchases (
			purchase_uid, account_id, product_name, quantity, measurement_unit,
			unit_price, total_price, purchase_date, category, purchase_location, created_at
		) VALUES (
			gen_random_uuid(), p_account_id, p_product_name, p_quantity, p_measurement_unit,
			p_unit_price, round(p_quantity * p_unit_price, 2), p_purchase_date,
			p_category, p_purchase_location, now()
		)
		RETURNING *;
	$$ LANGUAGE sql`,

	`CREATE OR REPLACE FUNCTION sp_purchase_get(
		p_account_id bigint,
		p_purchase_uid uuid
	) RETURNS SETOF purchases AS $$
		SELECT * FROM purchases
		WHERE account_id = p_account_id AND purchase_uid = p_purchase_uid;
	$$ LANGUAGE sql`,

	`CREATE OR REPLACE FUNCTION sp_purchase_update(
		p_account_id bigint,
		p_purchase_uid uuid,
		p_product_name varchar,
		p_quantity numeric,
		p_measurement_unit varchar,
		p_unit_price numeric,
		p_purchase_date date,
		p_category varchar,
		p_purchase_location varchar
	) RETURNS SETOF purchases AS $$
		UPDATE purchases SET
			product_name = p_product_name,
			quantity = p_quantity,
			measurement_unit = p_measurement_unit,
			unit_price = p_unit_price,
			total_price = round(p_quantity * p_unit_price, 2),
			purchase_date = p_purchase_date,
			category = p_category,
			purchase_location = p_purchase_location
		WHERE account_id = p_account_id AND purchase_uid = p_purchase_uid
		RETURNING *;
	$$ LANGUAGE sql`,

	`CREATE OR REPLACE FUNCTION sp_purchase_delete(
		p_account_id bigint,
		p_purchase_uid uuid
	) RETURNS bigint AS $$
		WITH deleted AS (
			DELETE FROM purchases
			WHERE account_id = p_account_id AND purchase_uid = p_purchase_uid
			RETURNING 1
		)
		SELECT count(*) FROM deleted;
	$$ LANGUAGE sql`,

	`CREATE OR REPLACE FUNCTION sp_purchase_list(
		p_account_id bigint
	) RETURNS SETOF purchases AS $$
		SELECT * FROM purchases
		WHERE account_id = p_account_id
		ORDER BY purchase_date DESC, id DESC;
	$$ LANGUAGE sql`,

	`CREATE OR REPLACE FUNCTION sp_purchase_month_total(
		p_account_id bigint
	) RETURNS numeric AS $$
		SELECT COALESCE(SUM(total_price), 0) FROM purchases
		WHERE account_id = p_account_id
		AND date_trunc('month', purchase_date) = date_trunc('month', CURRENT_DATE);
	$$ LANGUAGE sql`,
}

// InstallProcedures creates or replaces the sp_purchase_* functions.
func InstallProcedures(db *gorm.DB) error {
	for _, ddl := range procedures {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("install stored procedure: %w", err)
		}
	}
	return nil
}
