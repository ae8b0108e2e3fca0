package config

import (
	"fmt"
	"log"

	"github.com/seedforge/seedforge/pkg/derivation/bip32"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/spf13/viper"
)

const (
	// LogLevelKey is the key to customize the log level to catch more specific
	// or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the key to customize the Bitcoin network of the serialized
	// keys.
	NetworkKey = "NETWORK"
	// LanguageKey is the key to customize the default mnemonic language.
	LanguageKey = "LANGUAGE"
	// WordCountKey is the key to customize the default number of words of
	// generated and derived mnemonics.
	WordCountKey = "WORD_COUNT"
)

var (
	vip *viper.Viper

	defaultLogLevel  = 4
	defaultNetwork   = string(bip32.Mainnet)
	defaultLanguage  = string(bip39.English)
	defaultWordCount = 24

	supportedNetworks = map[string]bip32.Network{
		string(bip32.Mainnet): bip32.Mainnet,
		string(bip32.Testnet): bip32.Testnet,
	}
	supportedLanguages = map[string]bip39.Language{
		string(bip39.English):            bip39.English,
		string(bip39.Japanese):           bip39.Japanese,
		string(bip39.Korean):             bip39.Korean,
		string(bip39.Spanish):            bip39.Spanish,
		string(bip39.ChineseSimplified):  bip39.ChineseSimplified,
		string(bip39.ChineseTraditional): bip39.ChineseTraditional,
		string(bip39.French):             bip39.French,
		string(bip39.Italian):            bip39.Italian,
		string(bip39.Czech):              bip39.Czech,
	}
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("SEEDFORGE")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, defaultLogLevel)
	vip.SetDefault(NetworkKey, defaultNetwork)
	vip.SetDefault(LanguageKey, defaultLanguage)
	vip.SetDefault(WordCountKey, defaultWordCount)

	if err := validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
}

func validate() error {
	net := GetString(NetworkKey)
	if len(net) == 0 {
		return fmt.Errorf("network must not be null")
	}
	if _, ok := supportedNetworks[net]; !ok {
		nets := make([]string, 0, len(supportedNetworks))
		for net := range supportedNetworks {
			nets = append(nets, net)
		}
		return fmt.Errorf("unknown network, must be one of: %v", nets)
	}

	language := GetString(LanguageKey)
	if _, ok := supportedLanguages[language]; !ok {
		languages := make([]string, 0, len(supportedLanguages))
		for language := range supportedLanguages {
			languages = append(languages, language)
		}
		return fmt.Errorf("unknown language, must be one of: %v", languages)
	}

	wordCount := GetInt(WordCountKey)
	if _, err := bip39.EntropyBytesForWordCount(wordCount); err != nil {
		return fmt.Errorf("invalid word count: %s", err)
	}

	return nil
}

func GetNetwork() bip32.Network {
	return supportedNetworks[GetString(NetworkKey)]
}

func GetLanguage() bip39.Language {
	return supportedLanguages[GetString(LanguageKey)]
}

func GetLanguages() []bip39.Language {
	languages := make([]bip39.Language, 0, len(supportedLanguages))
	for _, language := range supportedLanguages {
		languages = append(languages, language)
	}
	return languages
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}
