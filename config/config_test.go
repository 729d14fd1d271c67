package config

import "testing"

func TestDefaults(t *testing.T) {
	var c ServerConfigs
	c.setDefaults()

	if c.Database == "" || c.Test.Database == "" {
		t.Fatal("empty database URL")
	}
	if c.Server.Address != ":8000" {
		t.Fatalf("unexpected address: %s", c.Server.Address)
	}
	if c.Images.Root != "images" {
		t.Fatalf("unexpected image root: %s", c.Images.Root)
	}
	if c.Images.MaxSize != 10<<20 {
		t.Fatalf("unexpected upload limit: %d", c.Images.MaxSize)
	}
}
