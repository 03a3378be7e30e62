package config

type Config struct {
	// При пустом DSN используется реестр в памяти
	DatabaseDSN string
}
