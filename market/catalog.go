package market

// Forex pip values are quoted per 100,000 unit standard lot in USD.
// Pairs not quoted in USD use an approximate conversion.
func fx(symbol, name string, pipLoc int, pipValue float64) Instrument {
	return Instrument{
		Symbol:       symbol,
		Name:         name,
		Category:     Forex,
		PipSize:      PipSize(pipLoc),
		PipValue:     pipValue,
		ContractSize: 100_000,
	}
}

func commodity(symbol, name string, pipSize, contract float64) Instrument {
	return Instrument{
		Symbol:       symbol,
		Name:         name,
		Category:     Commodities,
		PipSize:      pipSize,
		PipValue:     pipSize * contract,
		ContractSize: contract,
	}
}

func stock(symbol, name string) Instrument {
	return Instrument{
		Symbol:       symbol,
		Name:         name,
		Category:     Stocks,
		PipSize:      0.01,
		PipValue:     0.01,
		ContractSize: 1,
	}
}

func index(symbol, name string, pipSize, pipValue float64) Instrument {
	return Instrument{
		Symbol:       symbol,
		Name:         name,
		Category:     Indices,
		PipSize:      pipSize,
		PipValue:     pipValue,
		ContractSize: pipValue / pipSize,
	}
}

func coin(symbol, name string, pipSize float64) Instrument {
	return Instrument{
		Symbol:       symbol,
		Name:         name,
		Category:     Crypto,
		PipSize:      pipSize,
		PipValue:     pipSize,
		ContractSize: 1,
	}
}

var catalog = []Instrument{
	// Majors
	fx("EUR/USD", "Euro / US Dollar", -4, 10),
	fx("GBP/USD", "British Pound / US Dollar", -4, 10),
	fx("USD/JPY", "US Dollar / Japanese Yen", -2, 6.7),
	fx("USD/CHF", "US Dollar / Swiss Franc", -4, 11.2),
	fx("AUD/USD", "Australian Dollar / US Dollar", -4, 10),
	fx("USD/CAD", "US Dollar / Canadian Dollar", -4, 7.3),
	fx("NZD/USD", "New Zealand Dollar / US Dollar", -4, 10),

	// Minors
	fx("EUR/GBP", "Euro / British Pound", -4, 12.7),
	fx("EUR/JPY", "Euro / Japanese Yen", -2, 6.7),
	fx("GBP/JPY", "British Pound / Japanese Yen", -2, 6.7),
	fx("EUR/CHF", "Euro / Swiss Franc", -4, 11.2),
	fx("EUR/AUD", "Euro / Australian Dollar", -4, 6.6),
	fx("EUR/CAD", "Euro / Canadian Dollar", -4, 7.3),
	fx("GBP/CHF", "British Pound / Swiss Franc", -4, 11.2),
	fx("GBP/AUD", "British Pound / Australian Dollar", -4, 6.6),
	fx("AUD/JPY", "Australian Dollar / Japanese Yen", -2, 6.7),
	fx("AUD/NZD", "Australian Dollar / New Zealand Dollar", -4, 6.0),
	fx("CAD/JPY", "Canadian Dollar / Japanese Yen", -2, 6.7),
	fx("CHF/JPY", "Swiss Franc / Japanese Yen", -2, 6.7),
	fx("NZD/JPY", "New Zealand Dollar / Japanese Yen", -2, 6.7),

	// Exotics
	fx("USD/TRY", "US Dollar / Turkish Lira", -4, 0.3),
	fx("USD/ZAR", "US Dollar / South African Rand", -4, 0.55),
	fx("USD/MXN", "US Dollar / Mexican Peso", -4, 0.55),
	fx("USD/SGD", "US Dollar / Singapore Dollar", -4, 7.4),
	fx("USD/HKD", "US Dollar / Hong Kong Dollar", -4, 1.28),
	fx("USD/SEK", "US Dollar / Swedish Krona", -4, 0.95),
	fx("USD/NOK", "US Dollar / Norwegian Krone", -4, 0.93),
	fx("EUR/TRY", "Euro / Turkish Lira", -4, 0.3),

	// Metals
	commodity("XAU/USD", "Gold", 0.01, 100),
	commodity("XAG/USD", "Silver", 0.001, 5_000),
	commodity("XPT/USD", "Platinum", 0.01, 50),
	commodity("COPPER", "Copper", 0.0005, 25_000),

	// Energies
	commodity("USOIL", "WTI Crude Oil", 0.01, 1_000),
	commodity("UKOIL", "Brent Crude Oil", 0.01, 1_000),
	commodity("NATGAS", "Natural Gas", 0.001, 10_000),

	// Agriculturals
	commodity("CORN", "Corn", 0.0025, 5_000),
	commodity("WHEAT", "Wheat", 0.0025, 5_000),
	commodity("SOYBEAN", "Soybeans", 0.0025, 5_000),
	commodity("COFFEE", "Coffee", 0.0005, 37_500),
	commodity("SUGAR", "Sugar", 0.0001, 112_000),

	stock("AAPL", "Apple Inc."),
	stock("MSFT", "Microsoft Corporation"),
	stock("GOOGL", "Alphabet Inc."),
	stock("AMZN", "Amazon.com Inc."),
	stock("TSLA", "Tesla Inc."),
	stock("NVDA", "NVIDIA Corporation"),
	stock("META", "Meta Platforms Inc."),
	stock("NFLX", "Netflix Inc."),
	stock("JPM", "JPMorgan Chase & Co."),
	stock("V", "Visa Inc."),
	stock("AMD", "Advanced Micro Devices Inc."),
	stock("DIS", "The Walt Disney Company"),

	index("US30", "Dow Jones Industrial Average", 1, 1),
	index("US500", "S&P 500", 0.1, 1),
	index("NAS100", "Nasdaq 100", 0.1, 1),
	index("US2000", "Russell 2000", 0.1, 1),
	index("GER40", "DAX 40", 0.1, 1),
	index("UK100", "FTSE 100", 0.1, 1),
	index("FRA40", "CAC 40", 0.1, 1),
	index("JPN225", "Nikkei 225", 1, 1),
	index("AUS200", "ASX 200", 0.1, 1),
	index("HK50", "Hang Seng 50", 1, 1),

	coin("BTC/USD", "Bitcoin", 0.01),
	coin("ETH/USD", "Ethereum", 0.01),
	coin("SOL/USD", "Solana", 0.01),
	coin("LTC/USD", "Litecoin", 0.01),
	coin("BNB/USD", "BNB", 0.01),
	coin("DOT/USD", "Polkadot", 0.001),
	coin("XRP/USD", "XRP", 0.0001),
	coin("ADA/USD", "Cardano", 0.0001),
	coin("DOGE/USD", "Dogecoin", 0.00001),
	coin("SHIB/USD", "Shiba Inu", 0.00000001),
}
