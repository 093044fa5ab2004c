// Package metadata is the client's durable key/value storage: a single
// SQLite table `metadata(key TEXT PRIMARY KEY, value BLOB NOT NULL)`.
//
// The repository works over dbx.DBTX, so the same code runs against the
// database handle or inside a transaction opened with dbx.WithTx. Callers that
// must write several keys atomically bind a repository to the transaction:
//
//	dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := metadata.NewSQLiteRepository(tx)
//	    ...
//	})
package metadata
