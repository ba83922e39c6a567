package model

type Task struct {
	ID   int    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Text string `json:"tarefa" gorm:"column:tarefa;not null"`
}

func (Task) TableName() string {
	return "tarefas"
}
