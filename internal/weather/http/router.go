package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/weather", h.GetWeather)
	rg.GET("/weather/coords", h.GetWeatherByCoords)
	rg.GET("/forecast", h.GetForecast)
	rg.GET("/cities", h.SearchCities)
	rg.GET("/map/config", h.GetMapConfig)
}
