package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Profiles() ProfileRepository
	Messages() MessageRepository
	Products() ProductRepository
}
