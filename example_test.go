package config_test

import (
	"fmt"

	config "github.com/0xalexb/hjarta-config"
)

func ExampleFromMap() {
	value := config.FromMap(map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	})

	host, _ := value.Get("database.host")
	user, _ := value.GetDefault("database.user", "admin")

	fmt.Println(host)
	fmt.Println(user)
	// Output:
	// localhost
	// admin
}

func ExampleValue_Set() {
	value := config.New()

	// Missing intermediate groups are created automatically.
	_ = value.Set("server.pool.size", 10)

	fmt.Println(value.Keys())
	// Output:
	// [server.pool.size]
}

func ExampleValue_Unfold() {
	value := config.New()
	_ = value.Set("lr", []any{0.1, 0.01})
	_ = value.Set("depth", []any{2, 3})

	runs, _ := value.Unfold("lr", "depth")

	for _, run := range runs {
		lr, _ := run.Get("lr")
		depth, _ := run.Get("depth")
		fmt.Println(lr, depth)
	}
	// Output:
	// 0.1 2
	// 0.1 3
	// 0.01 2
	// 0.01 3
}

func ExampleValue_Filter() {
	value := config.New()
	_ = value.Set("server.host", "localhost")
	_ = value.Set("server.port", 8080)
	_ = value.Set("debug", true)

	serverOnly := value.Filter(func(path string, _ any) bool {
		return path != "debug"
	})

	fmt.Println(serverOnly.Keys())
	// Output:
	// [server.host server.port]
}

func ExampleValue_String() {
	value := config.New()
	_ = value.Set("name", "app")
	_ = value.Set("server.port", 8080)

	fmt.Print(value)
	// Output:
	// 2 entries
	//        name = app
	// server.port = 8080
}
