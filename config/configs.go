package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

// 10.0.4.10:8426 默认本机调试地址
var MainRouter string
var DSN string
var ModelDir string
var Download string
var Dbname string
var Host string
var DeviceName string
var MainConfig Config

type Config struct {
	XMLName    xml.Name `xml:"config"`
	MainRouter string   `xml:"MainRouter"`
	Dbname     string   `xml:"dbname"`
	Host       string   `xml:"host"`
	Port       string   `xml:"port"`
	Username   string   `xml:"user"`
	Password   string   `xml:"password"`
	ModelDir   string   `xml:"ModelDir"`
	Download   string   `xml:"download"`
	DeviceName string   `xml:"DeviceName"`
}

func init() {
	// 默认值，config.xml缺失时以单机模式运行
	MainConfig.MainRouter = "0.0.0.0:8426"
	MainConfig.ModelDir = "static/models"
	MainConfig.Download = "Download"

	xmlFile, err := os.Open("config.xml")
	if err == nil {
		defer xmlFile.Close()
		xmlDecoder := xml.NewDecoder(xmlFile)
		err = xmlDecoder.Decode(&MainConfig)
		if err != nil {
			fmt.Println("Error  decoding  XML:", err)
		}
	}

	MainRouter = MainConfig.MainRouter
	ModelDir = MainConfig.ModelDir
	Download = MainConfig.Download
	Dbname = MainConfig.Dbname
	Host = MainConfig.Host
	DeviceName = MainConfig.DeviceName

	DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)
}
