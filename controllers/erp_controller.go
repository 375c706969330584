package controllers

import (
	"errors"
	"net/http"
	"time"

	"MindEaseGo/config"
	"MindEaseGo/models"
	"MindEaseGo/services"
	"MindEaseGo/utils"

	"github.com/gin-gonic/gin"
)

type ERPController struct {
	store services.ERPTaskStore
}

func NewERPController(store services.ERPTaskStore) *ERPController {
	return &ERPController{store: store}
}

func (ec *ERPController) GetTasks(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := ec.store.FindERPTasks(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取ERP任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.ERPTask{}
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask 保存一个暴露阶梯步骤为ERP任务
func (ec *ERPController) CreateTask(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.CreateERPTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	task := models.ERPTask{
		ID:              utils.GenerateID(),
		UserID:          uid,
		Title:           request.Title,
		Description:     request.Description,
		DifficultyLevel: request.DifficultyLevel,
		CreatedAt:       time.Now(),
	}
	if err := ec.store.CreateERPTask(c.Request.Context(), &task); err != nil {
		config.Logger.Errorw("创建ERP任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleTaskCompletion 切换完成状态
func (ec *ERPController) ToggleTaskCompletion(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	task, ok := ec.ownedTask(c, uid)
	if !ok {
		return
	}

	task.ToggleCompletion(time.Now())
	if err := ec.store.SaveERPTask(c.Request.Context(), task); err != nil {
		config.Logger.Errorw("更新ERP任务失败", "error", err, "uid", uid, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (ec *ERPController) DeleteTask(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	task, ok := ec.ownedTask(c, uid)
	if !ok {
		return
	}

	if err := ec.store.DeleteERPTask(c.Request.Context(), task.ID); err != nil && !errors.Is(err, services.ErrNotFound) {
		config.Logger.Errorw("删除ERP任务失败", "error", err, "uid", uid, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task removed"})
}

// ownedTask 查找任务并校验归属
func (ec *ERPController) ownedTask(c *gin.Context, uid string) (*models.ERPTask, bool) {
	task, err := ec.store.FindERPTask(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return nil, false
	}
	if err != nil {
		config.Logger.Errorw("查询ERP任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load task"})
		return nil, false
	}
	if task.UserID != uid {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return nil, false
	}
	return task, true
}
