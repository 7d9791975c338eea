package service

import (
	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
)

type Services struct {
	UserService UserService
	BookService BookService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, cfg.App, logger),
		BookService: NewBookService(storages.BookRepository, logger),
	}
}
