package internal

type Config struct {
	// SlotCount is fixed at configuration time; slots are numbered 1..SlotCount.
	SlotCount      int    `env:"SLOT_COUNT,default=3"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	// TransferSecret must match on both devices of a transfer.
	TransferSecret string `env:"TRANSFER_SECRET,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8080"`
}
