package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so a join can create its payment entry and commit the group
// aggregate in one atomic unit.
type RepositoryFactory interface {
	// NewGroupRepository returns a GroupRepository bound to the current transaction.
	NewGroupRepository() GroupRepository

	// NewPaymentRepository returns a PaymentRepository bound to the current transaction.
	NewPaymentRepository() PaymentRepository

	// NewAlertRepository returns an AlertRepository bound to the current transaction.
	NewAlertRepository() AlertRepository
}
