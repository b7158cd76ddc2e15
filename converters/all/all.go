package all

import (
	// Import all the drivers so they register themselves
	_ "github.com/darianmavgo/internseed/converters/csv"
	_ "github.com/darianmavgo/internseed/converters/excel"
)
